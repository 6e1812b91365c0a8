package utils

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

func getEnv(key string, defaultValue interface{}) interface{} {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	var (
		parsed interface{}
		err    error
	)
	switch defaultValue.(type) {
	case string:
		return value
	case int:
		parsed, err = cast.ToIntE(value)
	case bool:
		parsed, err = cast.ToBoolE(value)
	default:
		return defaultValue
	}

	if err != nil {
		logrus.Warnf("Error parsing %s: %v, will use default value", key, err)
		return defaultValue
	}
	return parsed
}

func GetEnvString(key, defaultValue string) string {
	return getEnv(key, defaultValue).(string)
}

func GetEnvInt(key string, defaultValue int) int {
	return getEnv(key, defaultValue).(int)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return getEnv(key, defaultValue).(bool)
}
