package services

import (
	"testing"
)

func TestParseExtractsItemLines(t *testing.T) {
	parser := NewReceiptParser()

	ocrText := `SUPERMART #42
08/24/2026 10:31 AM
MILK WHOLE GALL 00015700146019 $3.02 F
BREAD WHEAT $2.49
2 @ $2.79 EACH
EGGS LARGE DOZEN $4.15
SUBTOTAL $9.66
TAX $0.58
TOTAL $10.24
THANK YOU FOR SHOPPING`

	receipt, err := parser.Parse(ocrText)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	wantNames := []string{"MILK WHOLE GALL", "BREAD WHEAT", "EGGS LARGE DOZEN"}
	if len(receipt.Items) != len(wantNames) {
		t.Fatalf("parsed %d items, want %d: %+v", len(receipt.Items), len(wantNames), receipt.Items)
	}
	for i, want := range wantNames {
		if receipt.Items[i].Name != want {
			t.Errorf("item %d: got name %q, want %q", i, receipt.Items[i].Name, want)
		}
		if receipt.Items[i].LineNumber != i {
			t.Errorf("item %d: got line number %d, want %d", i, receipt.Items[i].LineNumber, i)
		}
	}

	if receipt.Date == nil {
		t.Fatal("expected a purchase date")
	}
	if y, m, d := receipt.Date.Date(); y != 2026 || int(m) != 8 || d != 24 {
		t.Errorf("got date %v, want 2026-08-24", receipt.Date)
	}
}

func TestParseSkipsSummaryAndHeaderLines(t *testing.T) {
	parser := NewReceiptParser()

	excluded := []string{
		"TOTAL $23.10",
		"SUBTOTAL $21.00",
		"CASH $25.00",
		"CHANGE $1.90",
		"DAIRY",
		"----------",
		"2.96 lb @ $0.99 / lb",
	}

	for _, line := range excluded {
		receipt, err := parser.Parse(line)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", line, err)
		}
		if len(receipt.Items) != 0 {
			t.Errorf("Parse(%q) produced items %+v, want none", line, receipt.Items)
		}
	}
}

func TestParseQuantityPrefix(t *testing.T) {
	parser := NewReceiptParser()

	receipt, err := parser.Parse("3 x YOGURT CUP $1.25")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(receipt.Items) != 1 {
		t.Fatalf("parsed %d items, want 1", len(receipt.Items))
	}
	if receipt.Items[0].Quantity != 3 {
		t.Errorf("got quantity %v, want 3", receipt.Items[0].Quantity)
	}
	if receipt.Items[0].Name != "YOGURT CUP" {
		t.Errorf("got name %q, want %q", receipt.Items[0].Name, "YOGURT CUP")
	}
}

func TestMatchPantryLinksRestockCandidates(t *testing.T) {
	parser := NewReceiptParser()

	receipt, err := parser.Parse("MILK WHOLE GALL $3.02\nDRAGONFRUIT $5.99")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(receipt.Items) != 2 {
		t.Fatalf("parsed %d items, want 2", len(receipt.Items))
	}

	parser.MatchPantry(receipt, []string{"milk", "cheddar cheese"})

	if receipt.Items[0].PantryMatch != "milk" {
		t.Errorf("got pantry match %q, want %q", receipt.Items[0].PantryMatch, "milk")
	}
	if receipt.Items[1].PantryMatch != "" {
		t.Errorf("got pantry match %q for unmatched item, want empty", receipt.Items[1].PantryMatch)
	}
}
