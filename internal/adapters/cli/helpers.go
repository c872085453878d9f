package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/andrescamacho/craftchain-go/internal/infrastructure/config"
)

// resolveGroupName picks the group from the flag, falling back to the user default
func resolveGroupName(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}

	userConfigHandler, err := config.NewUserConfigHandler()
	if err != nil {
		return "", fmt.Errorf("no group specified and failed to load user config: %w", err)
	}

	userCfg, err := userConfigHandler.Load()
	if err != nil {
		return "", fmt.Errorf("no group specified and failed to load user config: %w", err)
	}

	if userCfg.DefaultGroup != "" {
		return userCfg.DefaultGroup, nil
	}

	return "", fmt.Errorf("no group specified: use --group or --file, or set a default with 'craftchain config set-group'")
}

// writeOutput prints v as indented JSON when --output json is set, otherwise calls text
func writeOutput(w io.Writer, v interface{}, text func() error) error {
	switch outputFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "text", "":
		return text()
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

// maskPassword hides the password of a connection URL
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "****")
	}
	return u.String()
}
