package signer

// Config holds signer configuration loaded from the environment.
type Config struct {
	Secret string `env:"DS_SECRET,required"`
}

// NewFromConfig creates a Signer from the provided Config.
func NewFromConfig(cfg Config) (*Signer, error) {
	return New(cfg.Secret)
}
