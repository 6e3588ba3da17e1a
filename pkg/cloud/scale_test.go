package cloud

import "testing"

func TestFontSize(t *testing.T) {
	cfg := ParseConfig(map[string]string{"minsize": "80", "maxsize": "200"})

	tests := []struct {
		name              string
		count, minS, maxS int
		want              int
	}{
		{"max count gets max size", 10, 5, 10, 200},
		{"min count gets min size", 5, 5, 10, 80},
		{"midpoint when range is zero", 7, 7, 7, 140},
		{"linear interpolation", 6, 4, 8, 140},
		{"rounds half away from zero", 3, 0, 16, 103}, // ratio 3/16 → 102.5
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FontSize(tt.count, tt.minS, tt.maxS, cfg)
			if got != tt.want {
				t.Errorf("FontSize(%d, %d, %d) = %d, want %d", tt.count, tt.minS, tt.maxS, got, tt.want)
			}
		})
	}
}

func TestFontSizeBounds(t *testing.T) {
	cfg := ParseConfig(map[string]string{"minsize": "70", "maxsize": "310"})

	for count := 1; count <= 50; count++ {
		got := FontSize(count, 1, 50, cfg)
		if got < cfg.MinFontPercent || got > cfg.MaxFontPercent {
			t.Fatalf("FontSize(%d, 1, 50) = %d, outside [%d, %d]",
				count, got, cfg.MinFontPercent, cfg.MaxFontPercent)
		}
	}
}

func TestSizesEqualCountsGetMidpoint(t *testing.T) {
	cfg := ParseConfig(map[string]string{"minsize": "80", "maxsize": "200"})
	entries := Sizes([]Category{
		{Name: "A", Count: 3},
		{Name: "B", Count: 3},
		{Name: "C", Count: 3},
	}, cfg)

	for _, e := range entries {
		if e.FontPercent != 140 {
			t.Errorf("%s: FontPercent = %d, want midpoint 140", e.Name, e.FontPercent)
		}
	}
}

func TestSizesWorkedExample(t *testing.T) {
	// categories [(A,10),(B,5),(C,1)] with min=2: qualifying = [A,B],
	// range 10-5=5, so A sits at ratio 1 and B at ratio 0.
	data := []Category{{Name: "A", Count: 10}, {Name: "B", Count: 5}, {Name: "C", Count: 1}}
	cfg := ParseConfig(map[string]string{"min": "2", "minsize": "80", "maxsize": "200"})

	entries := Sizes(Select(data, cfg), cfg)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Name != "A" || entries[0].FontPercent != 200 {
		t.Errorf("A = %+v, want FontPercent 200", entries[0])
	}
	if entries[1].Name != "B" || entries[1].FontPercent != 80 {
		t.Errorf("B = %+v, want FontPercent 80", entries[1])
	}
}

func TestSizesEmpty(t *testing.T) {
	if got := Sizes(nil, ParseConfig(nil)); got != nil {
		t.Errorf("Sizes(nil) = %v, want nil", got)
	}
}
