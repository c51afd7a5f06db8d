package stego

import (
	"fmt"
	"time"

	"GrayStego/pkg/analyzer"
	"GrayStego/pkg/filehandler"
	"GrayStego/pkg/grid"
	"GrayStego/pkg/models"
	"GrayStego/pkg/nibble"
	"GrayStego/pkg/resample"
)

// Options contains configuration for the file-level operations
type Options struct {
	// Resampler names the method used when the secret must be resized
	Resampler string
	// Verbose adds quality metrics to the results
	Verbose bool
}

// DefaultOptions returns the options used by the interactive tool
func DefaultOptions() Options {
	return Options{Resampler: resample.DefaultMethod}
}

// Operator loads images from disk, runs the nibble operations and saves the results
type Operator struct {
	options   Options
	resampler resample.Resampler
}

// NewOperator creates an operator, resolving the configured resampler in registry
func NewOperator(options Options, registry *resample.Registry) (*Operator, error) {
	if registry == nil {
		registry = resample.NewDefaultRegistry()
	}
	if options.Resampler == "" {
		options.Resampler = resample.DefaultMethod
	}

	rs, err := registry.Get(options.Resampler)
	if err != nil {
		return nil, err
	}

	return &Operator{
		options:   options,
		resampler: rs,
	}, nil
}

// Options returns the operator configuration
func (o *Operator) Options() Options {
	return o.options
}

// Hide embeds the image at secretPath into the image at coverPath and saves
// the stego image to outPath. Nothing is written when either input fails to load.
func (o *Operator) Hide(coverPath, secretPath, outPath string) (*models.EmbedResult, error) {
	if !filehandler.HasExtension(outPath) {
		return nil, fmt.Errorf("%w: %s", models.ErrMissingExtension, outPath)
	}

	startTime := time.Now()

	cover, coverFormat, err := filehandler.LoadGrayscale(coverPath)
	if err != nil {
		return nil, fmt.Errorf("cover image: %w", err)
	}
	secret, secretFormat, err := filehandler.LoadGrayscale(secretPath)
	if err != nil {
		return nil, fmt.Errorf("secret image: %w", err)
	}
	outFormat, _ := filehandler.FormatFromExtension(outPath)

	result := &models.EmbedResult{
		CoverPath:     coverPath,
		SecretPath:    secretPath,
		OutputPath:    outPath,
		CoverFormat:   coverFormat,
		SecretFormat:  secretFormat,
		OutputFormat:  outFormat,
		Width:         cover.Width,
		Height:        cover.Height,
		SecretWidth:   secret.Width,
		SecretHeight:  secret.Height,
		Resized:       !cover.SameSize(secret),
		Resampler:     o.resampler.Name(),
		OperationTime: startTime,
	}
	if result.Resized {
		result.AddFinding("Resized secret image to match cover dimensions",
			fmt.Sprintf("%v -> %v using %s", secret, cover, o.resampler.Name()))
	}

	stegoGrid, err := nibble.Embed(cover, secret, o.resampler)
	if err != nil {
		return nil, err
	}

	// Metrics come before saving so a failure here never leaves an output behind
	if o.options.Verbose {
		if err := o.measure(result, cover, secret, stegoGrid); err != nil {
			return nil, err
		}
	}

	if err := filehandler.SaveGrayscale(stegoGrid, outPath); err != nil {
		return nil, err
	}

	if outFormat == "jpeg" {
		result.AddWarning("Stego image saved as JPEG",
			"lossy compression alters the low nibble; the hidden image will not extract cleanly")
	}

	result.Duration = time.Since(startTime)
	return result, nil
}

func (o *Operator) measure(result *models.EmbedResult, cover, secret, stegoGrid *grid.Grid) error {
	report, err := analyzer.Compare(cover, stegoGrid)
	if err != nil {
		return err
	}
	result.Quality = *report

	if result.Resized {
		return nil
	}
	recovered, err := nibble.Extract(stegoGrid)
	if err != nil {
		return err
	}
	fidelity, err := analyzer.NibbleFidelity(secret, recovered)
	if err != nil {
		return err
	}
	result.AddFinding("Recovery self-check",
		fmt.Sprintf("%.1f%% of pixels recover the secret's high nibble", fidelity*100))
	return nil
}

// Extract recovers the image hidden in stegoPath and saves it to outPath
func (o *Operator) Extract(stegoPath, outPath string) (*models.ExtractResult, error) {
	startTime := time.Now()

	stegoGrid, stegoFormat, err := filehandler.LoadGrayscale(stegoPath)
	if err != nil {
		return nil, fmt.Errorf("stego image: %w", err)
	}

	recovered, err := nibble.Extract(stegoGrid)
	if err != nil {
		return nil, err
	}

	if err := filehandler.SaveGrayscale(recovered, outPath); err != nil {
		return nil, err
	}
	outFormat, _ := filehandler.FormatFromExtension(outPath)

	result := &models.ExtractResult{
		StegoPath:      stegoPath,
		OutputPath:     outPath,
		StegoFormat:    stegoFormat,
		OutputFormat:   outFormat,
		Width:          recovered.Width,
		Height:         recovered.Height,
		DistinctLevels: analyzer.DistinctLevels(recovered),
		OperationTime:  startTime,
	}

	if o.options.Verbose {
		result.AddFinding("Low-nibble entropy of stego image",
			fmt.Sprintf("%.3f bits (4.000 is uniform)", analyzer.NibbleEntropy(stegoGrid)))
	}

	result.Duration = time.Since(startTime)
	return result, nil
}
