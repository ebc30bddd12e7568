// Package config provides the runtime settings for yap.
//
// Settings come from two layers, higher overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  2. Environment Variables   │  ← YAP_LOG_FILE, YAP_TAB_WIDTH, ...
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// There is no configuration file. Flags are defined on a pflag.FlagSet
// with BindFlags and resolved through viper by Load:
//
//	v := viper.New()
//	if err := config.BindFlags(cmd.Flags(), v); err != nil {
//	    return err
//	}
//	cfg, err := config.Load(v)
package config
