package parallel

// Band is a half-open row range [Start, End).
type Band struct {
	Start, End int
}

// Bands splits rows into at most n contiguous, non-overlapping bands of
// near-equal height covering [0, rows). It returns nil when rows <= 0.
func Bands(rows, n int) []Band {
	if rows <= 0 {
		return nil
	}
	n = min(max(n, 1), rows)

	bands := make([]Band, 0, n)
	base, extra := rows/n, rows%n
	start := 0
	for i := range n {
		h := base
		if i < extra {
			h++
		}
		bands = append(bands, Band{Start: start, End: start + h})
		start += h
	}
	return bands
}
