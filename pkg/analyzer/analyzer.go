package analyzer

import (
	"errors"
	"fmt"
	"math"

	"GrayStego/pkg/grid"
	"GrayStego/pkg/models"
)

/*
Analyzer.go contains the metrics reported after hiding or recovering an image.
Compare: mean squared error, PSNR and largest absolute difference between two grids of equal size.
NibbleFidelity: share of pixels where a recovered grid holds the secret quantized to multiples of 16.
DistinctLevels: number of gray levels present in a grid.
NibbleEntropy: Shannon entropy (bits) of the low-nibble histogram of a grid.
*/

// maxIntensity is the peak signal value used for PSNR
const maxIntensity = 255.0

// Compare measures how far b is from a
func Compare(a, b *grid.Grid) (*models.QualityReport, error) {
	if a == nil || b == nil {
		return nil, errors.New("nil grid provided")
	}
	if !a.SameSize(b) {
		return nil, fmt.Errorf("grid sizes differ: %v vs %v", a, b)
	}

	report := &models.QualityReport{PSNR: math.Inf(1)}
	if len(a.Pix) == 0 {
		return report, nil
	}

	sum := 0.0
	for i := range a.Pix {
		diff := int(a.Pix[i]) - int(b.Pix[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > report.MaxAbsDiff {
			report.MaxAbsDiff = diff
		}
		sum += float64(diff * diff)
	}

	report.MSE = sum / float64(len(a.Pix))
	if report.MSE > 0 {
		report.PSNR = 10 * math.Log10(maxIntensity*maxIntensity/report.MSE)
	}
	return report, nil
}

// NibbleFidelity returns the fraction (0.0-1.0) of pixels where recovered
// equals secret with its low nibble cleared
func NibbleFidelity(secret, recovered *grid.Grid) (float64, error) {
	if secret == nil || recovered == nil {
		return 0, errors.New("nil grid provided")
	}
	if !secret.SameSize(recovered) {
		return 0, fmt.Errorf("grid sizes differ: %v vs %v", secret, recovered)
	}
	if len(secret.Pix) == 0 {
		return 1, nil
	}

	matches := 0
	for i, s := range secret.Pix {
		if recovered.Pix[i] == s&0xF0 {
			matches++
		}
	}
	return float64(matches) / float64(len(secret.Pix)), nil
}

// DistinctLevels counts the gray levels present in g
func DistinctLevels(g *grid.Grid) int {
	var seen [256]bool
	count := 0
	for _, v := range g.Pix {
		if !seen[v] {
			seen[v] = true
			count++
		}
	}
	return count
}

// NibbleEntropy calculates the Shannon entropy of the low nibbles of g.
// Values range from 0 (constant) to 4 bits (uniform over all 16 values).
func NibbleEntropy(g *grid.Grid) float64 {
	if len(g.Pix) == 0 {
		return 0
	}

	var counts [16]int
	for _, v := range g.Pix {
		counts[v&0x0F]++
	}

	total := float64(len(g.Pix))
	entropy := 0.0
	for _, c := range counts {
		if c == 0 {
			continue // Avoid log(0)
		}
		p := float64(c) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}
