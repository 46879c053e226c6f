package observability

import "go.uber.org/zap"

// String constructs a string log field.
func String(key, value string) zap.Field {
	return zap.String(key, value)
}

// Int constructs an int log field.
func Int(key string, value int) zap.Field {
	return zap.Int(key, value)
}

// Error constructs an error log field under the "error" key.
func Error(err error) zap.Field {
	return zap.Error(err)
}
