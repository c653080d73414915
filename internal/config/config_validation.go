package config

// Defaults applied by validate for fields that may be left unset.
const (
	defaultHTTPAddress = ":8080"
	defaultOpenPrefix  = "open_"
)

// validate applies defaults and checks that the merged configuration is
// complete enough to start the service. The encryption key's format (exact
// 32-byte decoded length) is deliberately not checked here; that contract
// belongs to the cipher codec's constructor, which is the key's only owner.
func (c *StructuredConfig) validate() error {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}

	if len(c.Questions.OpenEndedPrefixes) == 0 {
		c.Questions.OpenEndedPrefixes = []string{defaultOpenPrefix}
	}

	if c.App.EncryptionKey == "" {
		return ErrNoEncryptionKey
	}

	if c.App.AdminSecret == "" {
		return ErrNoAdminSecret
	}

	if c.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	return nil
}
