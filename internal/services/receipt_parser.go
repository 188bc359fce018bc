package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nbbaier/smartrecipe/internal/models"
	"github.com/nbbaier/smartrecipe/internal/suggest"
)

// ReceiptParser turns OCR text from a grocery receipt into pantry
// restock candidates. Prices on the receipt are only used to decide
// whether a line is an item line; the pantry doesn't track cost.
type ReceiptParser struct {
	itemPatterns    []*regexp.Regexp
	excludePatterns []*regexp.Regexp
	datePatterns    []*regexp.Regexp
}

// NewReceiptParser creates a new receipt parser
func NewReceiptParser() *ReceiptParser {
	return &ReceiptParser{
		itemPatterns: []*regexp.Regexp{
			// Pattern: Commissary format - ITEM NAME UPC $X.XX F (UPC is 11-14 digits)
			// Examples: MILK WHOLE GALL 00015700146019 $3.02 F
			regexp.MustCompile(`^(.+?)\s+\d{11,14}\s+\$?\d{1,3}\.\d{2}\s*[FNT]?\s*$`),
			// Pattern: QTY x ITEM @ PRICE or QTY ITEM @ PRICE
			regexp.MustCompile(`^(\d+)\s*[xX@]\s*(.+?)\s+\$?\d{1,3}\.\d{2}`),
			// Pattern: ITEM NAME @ X.XX EA
			regexp.MustCompile(`^(.+?)\s+@\s*\$?\d{1,3}\.\d{2}\s*(?:EA|EACH)?`),
			// Pattern: ITEM NAME    $X.XX or ITEM NAME    X.XX (price at end)
			regexp.MustCompile(`^(.+?)\s+\$?\d{1,3}\.\d{2}\s*[FNT]?\s*$`),
		},
		excludePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^\s*(TAX|SUBTOTAL|SUB\s*TOTAL|TOTAL|GRAND\s*TOTAL|BALANCE|CHANGE|CASH|CREDIT|DEBIT|CARD|VISA|MASTERCARD|AMEX|DISCOVER|SAVINGS|DISCOUNT|COUPON|MEMBER|LOYALTY|POINTS|REWARD|THANK\s*YOU|HAVE\s*A|STORE\s*#|CASHIER|TRANS|REG|DATE|TIME|TEL|PHONE|ADDRESS|RECEIPT|RETURN|REFUND|VOID|SURCHARGE|SOLD\s*ITEMS?|PAID|PURCHASE|CREDIT\s*CARD)\b`),
			regexp.MustCompile(`^\s*[-=*]+\s*$`),
			regexp.MustCompile(`^\s*\d{2}[/-]\d{2}[/-]\d{2,4}\s*$`),
			regexp.MustCompile(`^\s*\d{1,2}:\d{2}\s*(AM|PM)?\s*$`),
			// Category headers some chains print between item groups
			regexp.MustCompile(`(?i)^\s*(BREAD\s*(AND|&)\s*SNACKS|DAIRY|PACKAGE\s*FOOD|PRE\s*PACKAGED\s*MEAT|PRODUCE|SPECIALTY\s*FOODS?|FROZEN\s*FOODS?|BEVERAGES?|DELI|BAKERY|MEAT|SEAFOOD|GROCERY|HEALTH\s*(AND|&)\s*BEAUTY|HOUSEHOLD|PET\s*SUPPLIES?)\s*$`),
			// Quantity/weight detail lines: "2 @ $2.79 EACH" or "2.96 lb @ $0.99 / lb"
			regexp.MustCompile(`^\s*\d+\.?\d*\s*(lb|oz|kg|g)?\s*@\s*\$?\d+\.\d{2}\s*(\/\s*(lb|oz|kg|g)|EACH|EA)?\s*$`),
		},
		datePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})`),
			regexp.MustCompile(`(\d{4})[/-](\d{1,2})[/-](\d{1,2})`),
		},
	}
}

// Parse parses OCR text and extracts pantry restock candidates
func (p *ReceiptParser) Parse(ocrText string) (*models.ParsedReceipt, error) {
	lines := strings.Split(ocrText, "\n")
	result := &models.ParsedReceipt{
		Items: []models.ParsedItem{},
	}

	result.Date = p.extractDate(lines)

	lineNumber := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if p.shouldExclude(line) {
			continue
		}

		item := p.parseLine(line, lineNumber)
		if item != nil {
			result.Items = append(result.Items, *item)
			lineNumber++
		}
	}

	return result, nil
}

// MatchPantry fills in PantryMatch on each parsed item with the name of
// an existing pantry item it appears to restock
func (p *ReceiptParser) MatchPantry(receipt *models.ParsedReceipt, pantryNames []string) {
	for i := range receipt.Items {
		for _, name := range pantryNames {
			if suggest.NamesMatch(receipt.Items[i].Name, name) {
				receipt.Items[i].PantryMatch = name
				break
			}
		}
	}
}

// parseLine attempts to parse a line as a purchased item
func (p *ReceiptParser) parseLine(line string, lineNumber int) *models.ParsedItem {
	line = p.cleanLine(line)

	for _, pattern := range p.itemPatterns {
		matches := pattern.FindStringSubmatch(line)
		if len(matches) < 2 {
			continue
		}

		var name string
		quantity := 1.0

		if len(matches) == 3 {
			// Pattern with quantity: QTY, NAME
			if qty, err := strconv.Atoi(matches[1]); err == nil {
				quantity = float64(qty)
			}
			name = matches[2]
		} else {
			name = matches[1]
		}

		name = p.cleanItemName(name)
		if name == "" {
			continue
		}

		return &models.ParsedItem{
			Name:       name,
			Quantity:   quantity,
			LineNumber: lineNumber,
		}
	}

	return nil
}

// shouldExclude checks if a line should be excluded
func (p *ReceiptParser) shouldExclude(line string) bool {
	for _, pattern := range p.excludePatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

// cleanLine cleans up a line for parsing
func (p *ReceiptParser) cleanLine(line string) string {
	spaceRe := regexp.MustCompile(`\s+`)
	line = spaceRe.ReplaceAllString(line, " ")

	// Common OCR artifacts
	line = strings.ReplaceAll(line, "|", "")
	line = strings.ReplaceAll(line, "\\", "")

	return strings.TrimSpace(line)
}

// cleanItemName cleans up an item name
func (p *ReceiptParser) cleanItemName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimRight(name, ".,;:-_")

	prefixes := []string{"@", "#", "*"}
	for _, prefix := range prefixes {
		name = strings.TrimPrefix(name, prefix)
	}

	return strings.TrimSpace(name)
}

// extractDate extracts the purchase date from the receipt
func (p *ReceiptParser) extractDate(lines []string) *time.Time {
	for _, line := range lines {
		for _, pattern := range p.datePatterns {
			matches := pattern.FindStringSubmatch(line)
			if len(matches) >= 4 {
				var year, month, day int
				var err error

				// Try MM/DD/YYYY or MM-DD-YYYY format
				month, err = strconv.Atoi(matches[1])
				if err != nil {
					continue
				}
				day, err = strconv.Atoi(matches[2])
				if err != nil {
					continue
				}
				year, err = strconv.Atoi(matches[3])
				if err != nil {
					continue
				}

				// Handle 2-digit years
				if year < 100 {
					if year > 50 {
						year += 1900
					} else {
						year += 2000
					}
				}

				// Check if it's actually YYYY-MM-DD format
				if len(matches[1]) == 4 {
					year, _ = strconv.Atoi(matches[1])
					month, _ = strconv.Atoi(matches[2])
					day, _ = strconv.Atoi(matches[3])
				}

				if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
					date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
					return &date
				}
			}
		}
	}
	return nil
}
