package commands

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// mustBind binds key to flag. Binding only fails for a nil flag, which is a
// programming error.
func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
