package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	qr "github.com/door66/sigil/pkg/qrcode"
	"github.com/door66/sigil/pkg/sheet"
)

// Config is the resolved application configuration. Every value has a
// built-in default, an optional config-file override and a SIGIL_*
// environment override, in that order of increasing precedence.
type Config struct {
	Debug     bool
	LogToFile bool
	LogsDir   string
	FontPaths []string
	BaseURL   string
	Style     qr.Style
	Sheet     sheet.Layout
}

// Load reads the optional config file and resolves the configuration.
// With an empty path it looks for config.yaml in the working directory
// and silently falls back to defaults when there is none; an explicit
// path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("sigil")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	foreground, err := qr.ParseColor(v.GetString("style.foreground"), false)
	if err != nil {
		return nil, err
	}
	background, err := qr.ParseColor(v.GetString("style.background"), true)
	if err != nil {
		return nil, err
	}
	overlay, err := qr.ParseOverlay(v.GetString("style.overlay"))
	if err != nil {
		return nil, err
	}
	level, err := qr.ParseRecoveryLevel(v.GetString("style.level"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Debug:     v.GetBool("settings.debug"),
		LogToFile: v.GetBool("settings.log-to-file"),
		LogsDir:   v.GetString("settings.logs-dir"),
		FontPaths: v.GetStringSlice("fonts.paths"),
		BaseURL:   v.GetString("sheet.base-url"),
		Style: qr.Style{
			Size:          v.GetInt("style.size"),
			Margin:        v.GetFloat64("style.margin"),
			CornerRadius:  v.GetFloat64("style.corner-radius"),
			Overlay:       overlay,
			OverlayRatio:  v.GetFloat64("style.overlay-ratio"),
			Label:         v.GetString("style.label"),
			Foreground:    foreground,
			Background:    background,
			Rotate:        v.GetBool("style.rotate"),
			RecoveryLevel: level,
		},
		Sheet: sheet.Layout{
			PageWidth:  v.GetFloat64("sheet.page-width"),
			PageHeight: v.GetFloat64("sheet.page-height"),
			DPI:        v.GetInt("sheet.dpi"),
			Margin:     v.GetFloat64("sheet.margin"),
			Gap:        v.GetFloat64("sheet.gap"),
			Cols:       v.GetInt("sheet.cols"),
			Rows:       v.GetInt("sheet.rows"),
			CellRatio:  v.GetFloat64("sheet.cell-ratio"),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	style := qr.DefaultStyle()
	v.SetDefault("settings.debug", false)
	v.SetDefault("settings.log-to-file", false)
	v.SetDefault("settings.logs-dir", "logs")
	v.SetDefault("fonts.paths", []string{})

	v.SetDefault("style.size", style.Size)
	v.SetDefault("style.margin", style.Margin)
	v.SetDefault("style.corner-radius", style.CornerRadius)
	v.SetDefault("style.overlay", string(style.Overlay))
	v.SetDefault("style.overlay-ratio", style.OverlayRatio)
	v.SetDefault("style.label", "")
	v.SetDefault("style.foreground", "black")
	v.SetDefault("style.background", "white")
	v.SetDefault("style.rotate", style.Rotate)
	v.SetDefault("style.level", "highest")

	layout := sheet.DefaultLayout()
	v.SetDefault("sheet.base-url", "")
	v.SetDefault("sheet.page-width", layout.PageWidth)
	v.SetDefault("sheet.page-height", layout.PageHeight)
	v.SetDefault("sheet.dpi", layout.DPI)
	v.SetDefault("sheet.margin", layout.Margin)
	v.SetDefault("sheet.gap", layout.Gap)
	v.SetDefault("sheet.cols", layout.Cols)
	v.SetDefault("sheet.rows", layout.Rows)
	v.SetDefault("sheet.cell-ratio", layout.CellRatio)
}
