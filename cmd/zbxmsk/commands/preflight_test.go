package commands

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckTools(t *testing.T) {
	defer func() { lookPath = exec.LookPath }()

	lookPath = func(string) (string, error) {
		return "/usr/bin/tool", nil
	}
	assert.True(t, checkTools())

	lookPath = func(name string) (string, error) {
		if name == "jq" {
			return "", errors.New("not found")
		}
		return "/usr/bin/" + name, nil
	}
	assert.False(t, checkTools())
}
