package config

import "errors"

var ErrInvalidAPIURL = errors.New("API_URL must be an absolute URL with scheme and host")
