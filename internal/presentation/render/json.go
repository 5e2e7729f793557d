package render

import (
	"github.com/bytedance/sonic"
)

// JSON marshals the derived chart, including the normalized window and
// summary, for machine consumers.
func JSON(c Chart) (string, error) {
	data, err := sonic.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
