package command

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Xhst/dssa-multiagent-scheduling/engine"
)

// problemFile is the on-disk shape a `-in problem.json` flag points at: one
// resource profile plus every agent's task sizes, dependencies, and display
// color, mirroring app.py's request payload.
type problemFile struct {
	Resources []int           `json:"resources"`
	Agents    []agentSpecFile `json:"agents"`
}

type agentSpecFile struct {
	TaskSizes    []int   `json:"task_sizes"`
	Dependencies [][]int `json:"dependencies"`
	Color        string  `json:"color"`
}

// loadProblem reads and decodes a problem file into engine.Request fields.
func loadProblem(path string) ([]int, []engine.AgentSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read problem file: %w", err)
	}

	var pf problemFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, nil, fmt.Errorf("parse problem file: %w", err)
	}

	agents := make([]engine.AgentSpec, len(pf.Agents))
	for i, a := range pf.Agents {
		agents[i] = engine.AgentSpec{
			TaskSizes:    a.TaskSizes,
			Dependencies: a.Dependencies,
			Color:        a.Color,
		}
	}
	return pf.Resources, agents, nil
}
