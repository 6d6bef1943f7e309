package extract

import (
	"reflect"
	"testing"
)

func TestDetectBandsFindsTargetsOnly(t *testing.T) {
	words := []Word{
		{Text: "VESSEL", X0: 10, X1: 50, Top: 0},
		{Text: "OPR", X0: 110, X1: 130, Top: 0},
		{Text: "S.S", X0: 10, X1: 25, Top: 0},
		{Text: "45G1", X0: 200, X1: 225, Top: 0},
	}

	bands := detectBands(words, 5)
	got := labels(bands)
	want := []string{"S.S", "OPR", "45G1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestDetectBandsSortedLeftToRight(t *testing.T) {
	words := []Word{
		{Text: "POD", X0: 300, X1: 330},
		{Text: "POL", X0: 100, X1: 130},
		{Text: "OPR", X0: 200, X1: 230},
	}

	bands := detectBands(words, 5)
	want := []string{"POL", "OPR", "POD"}
	if got := labels(bands); !reflect.DeepEqual(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
	if bands[0].x0 != 95 || bands[0].x1 != 135 {
		t.Errorf("POL band = [%v, %v], want [95, 135]", bands[0].x0, bands[0].x1)
	}
}

func TestDetectBandsKeepsRepeatedLabels(t *testing.T) {
	words := []Word{
		{Text: "OPR", X0: 100, X1: 130},
		{Text: "OPR", X0: 400, X1: 430},
	}

	bands := detectBands(words, 5)
	if len(bands) != 2 {
		t.Fatalf("expected both occurrences kept, got %d", len(bands))
	}
	if bands[0].x0 >= bands[1].x0 {
		t.Error("bands should be sorted by left edge")
	}
}

func TestDetectBandsNoHeaders(t *testing.T) {
	words := []Word{
		{Text: "MAERSK", X0: 10, X1: 60},
		{Text: "ROTTERDAM", X0: 100, X1: 170},
	}
	if bands := detectBands(words, 5); len(bands) != 0 {
		t.Errorf("expected no bands, got %+v", bands)
	}
}
