package config

import "github.com/spf13/viper"

// Paging configures cursor token handling.
type Paging struct {
	// Secret enables HMAC tagging of cursor tokens when non-empty.
	Secret string
}

func getPagingConfig(v *viper.Viper) *Paging {
	return &Paging{
		Secret: v.GetString("paging.secret"),
	}
}
