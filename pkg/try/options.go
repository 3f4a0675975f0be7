package try

import "context"

type OptionKey string

const CaptureOptionKey OptionKey = "capture_options"

type Options struct {
	// DetectReturnedFaults turns a normally returned error-shaped value into a Failure.
	DetectReturnedFaults bool
}

func DefaultOptions() Options {
	return Options{DetectReturnedFaults: true}
}

func WithCaptureOptions(ctx context.Context, detectReturnedFaults bool) context.Context {
	return context.WithValue(ctx, CaptureOptionKey, Options{DetectReturnedFaults: detectReturnedFaults})
}

func GetCaptureOptions(ctx context.Context, defaultOptions Options) Options {
	options, ok := ctx.Value(CaptureOptionKey).(Options)
	if ok {
		return options
	}
	return defaultOptions
}
