package commands

import (
	"fmt"
	"os/exec"
)

// requiredTools are external commands the monitoring templates
// expect on the host. Their presence is checked up front; they are
// never invoked from the metric path.
var requiredTools = []string{"aws", "jq"}

// Swappable for tests.
var lookPath = exec.LookPath

// checkTools reports whether every required tool resolves on PATH,
// printing one line per missing tool.
func checkTools() bool {
	ok := true
	for _, tool := range requiredTools {
		if _, err := lookPath(tool); err != nil {
			fmt.Printf("No se encontro el comando %s\n", tool)
			ok = false
		}
	}
	return ok
}
