package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Job is one input directory to publish, typically one chain.
type Job struct {
	Name     string `yaml:"name"`
	In       string `yaml:"in"`
	Out      string `yaml:"out"`
	Filename string `yaml:"filename"`
}

type jobsFile struct {
	Jobs []Job `yaml:"jobs"`
}

// LoadJobs reads the job list from a YAML file of the form
//
//	jobs:
//	  - name: mainnet
//	    in: ./abi/mainnet
//	    out: ./out/mainnet
//	    filename: ETH_ADDRESSES
//
// Jobs are returned in file order. Unknown keys are an error. An empty file
// gives no jobs.
func LoadJobs(path string) ([]Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var parsed jobsFile
	if err := dec.Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("couldn't parse jobs file %s: %w", path, err)
	}
	for i := range parsed.Jobs {
		if parsed.Jobs[i].Name == "" {
			parsed.Jobs[i].Name = fmt.Sprintf("job %d", i+1)
		}
	}
	return parsed.Jobs, nil
}
