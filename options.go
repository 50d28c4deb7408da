package mdmend

// MendOptions holds options for the mend pipeline.
type MendOptions struct {
	DefaultLang    string
	CloseOnNewline bool
	KeepFenceChar  bool
}

// Option is a function that configures MendOptions.
type Option func(*MendOptions)

// WithDefaultLang sets the language tag applied to fences whose language
// cannot be guessed from their content.
func WithDefaultLang(lang string) Option {
	return func(opts *MendOptions) {
		opts.DefaultLang = lang
	}
}

// WithCloseOnNewline sets whether open math delimiters are force-closed at
// paragraph boundaries instead of end of input.
func WithCloseOnNewline(enable bool) Option {
	return func(opts *MendOptions) {
		opts.CloseOnNewline = enable
	}
}

// WithKeepFenceChar sets whether tilde fences keep their character. When
// false they are rewritten as backtick fences.
func WithKeepFenceChar(keep bool) Option {
	return func(opts *MendOptions) {
		opts.KeepFenceChar = keep
	}
}

// WithConfig copies the mend-related fields from a Config.
func WithConfig(config *Config) Option {
	return func(opts *MendOptions) {
		if config == nil {
			return
		}
		opts.DefaultLang = config.DefaultLang
		opts.CloseOnNewline = config.CloseOnNewline
		opts.KeepFenceChar = config.KeepFenceChar
	}
}

// defaultMendOptions returns the default mend options.
func defaultMendOptions() *MendOptions {
	cfg := DefaultConfig()
	return &MendOptions{
		DefaultLang:    cfg.DefaultLang,
		CloseOnNewline: cfg.CloseOnNewline,
		KeepFenceChar:  cfg.KeepFenceChar,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *MendOptions {
	options := defaultMendOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
