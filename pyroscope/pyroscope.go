package pyroscope

import (
	"os"
	"runtime"

	"github.com/grafana/pyroscope-go"
)

// Run starts profiling a labelling run. The returned stop func flushes
// what was collected and is a no-op when profiling is not configured.
func Run(config *Config) (func(), error) {
	if !config.Enabled() {
		return func() {}, nil
	}

	runtime.SetMutexProfileFraction(config.MutexProfileFraction)
	runtime.SetBlockProfileRate(config.BlockProfileRate)

	pyroscopeConfig := pyroscope.Config{
		ApplicationName: config.ApplicationName,
		ServerAddress:   config.ServerAddress,
		Tags:            map[string]string{"hostname": os.Getenv("HOSTNAME")},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
		},
	}

	if config.ApiKey != "" {
		pyroscopeConfig.AuthToken = config.ApiKey
	}

	profiler, err := pyroscope.Start(pyroscopeConfig)
	if err != nil {
		return nil, err
	}

	return func() { profiler.Stop() }, nil
}
