package pagination

import "testing"

func TestGetOffset(t *testing.T) {
	cases := []struct {
		name                   string
		page, limit, total     int
		wantOffset, wantActual int
	}{
		{"first page", 1, 10, 25, 0, 1},
		{"middle page", 2, 10, 25, 10, 2},
		{"page beyond range clamps to last", 10, 10, 25, 20, 3},
		{"empty total", 1, 10, 0, 0, 1},
		{"empty total with high page", 7, 10, 0, 0, 1},
		{"zero page clamps up", 0, 10, 25, 0, 1},
		{"negative page clamps up", -3, 5, 12, 0, 1},
		{"exact multiple last page", 3, 5, 15, 10, 3},
		{"limit larger than total", 2, 50, 25, 0, 1},
		{"limit below one treated as one", 2, 0, 3, 1, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := GetOffset(tc.page, tc.limit, tc.total)
			if got.Offset != tc.wantOffset || got.ActualPage != tc.wantActual {
				t.Errorf("GetOffset(%d, %d, %d) = {offset %d, page %d}, want {offset %d, page %d}",
					tc.page, tc.limit, tc.total, got.Offset, got.ActualPage, tc.wantOffset, tc.wantActual)
			}
		})
	}
}

func TestGetOffsetInvariants(t *testing.T) {
	for total := 0; total <= 40; total += 7 {
		for limit := 1; limit <= 12; limit += 4 {
			for page := 1; page <= 8; page++ {
				got := GetOffset(page, limit, total)

				lastPage := (total + limit - 1) / limit
				if lastPage < 1 {
					lastPage = 1
				}
				if got.ActualPage < 1 || got.ActualPage > lastPage {
					t.Fatalf("GetOffset(%d, %d, %d): actual page %d outside [1, %d]",
						page, limit, total, got.ActualPage, lastPage)
				}
				if got.Offset != (got.ActualPage-1)*limit {
					t.Fatalf("GetOffset(%d, %d, %d): offset %d != (page-1)*limit",
						page, limit, total, got.Offset)
				}
			}
		}
	}
}
