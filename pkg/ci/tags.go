// Package ci normalizes CI provider environments, git metadata and user
// overrides into a flat tag set suitable for attaching to test traces.
package ci

// Tag keys for common CI attributes.
const (
	// StageName indicates stage name.
	StageName = "ci.stage.name"
	// JobName indicates job name.
	JobName = "ci.job.name"
	// JobURL indicates job URL.
	JobURL = "ci.job.url"
	// PipelineID indicates pipeline ID.
	PipelineID = "ci.pipeline.id"
	// PipelineName indicates pipeline name.
	PipelineName = "ci.pipeline.name"
	// PipelineNumber indicates pipeline number.
	PipelineNumber = "ci.pipeline.number"
	// PipelineURL indicates pipeline URL.
	PipelineURL = "ci.pipeline.url"
	// ProviderName indicates the CI provider.
	ProviderName = "ci.provider.name"
	// WorkspacePath records an absolute path to the directory where the
	// project has been checked out.
	WorkspacePath = "ci.workspace_path"
)

// Tag keys for OS and runtime facets. These are always populated from the
// execution environment.
const (
	// OSArchitecture indicates the machine architecture.
	OSArchitecture = "os.architecture"
	// OSPlatform indicates the operating system name.
	OSPlatform = "os.platform"
	// OSVersion indicates the operating system release.
	OSVersion = "os.version"
	// RuntimeName indicates the language runtime.
	RuntimeName = "runtime.name"
	// RuntimeVersion indicates the language runtime version.
	RuntimeVersion = "runtime.version"
)

// EnvVars carries a serialized subset of provider variables used for
// pipeline correlation.
const EnvVars = "_ci.env_vars"
