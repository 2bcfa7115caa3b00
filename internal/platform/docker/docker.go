package docker

import "context"

// Runner exposes the docker operations used by the publish flow.
type Runner interface {
	Version(ctx context.Context) (string, error)
	Build(ctx context.Context, dockerfilePath, imageTag, contextPath string) (string, error)
	Tag(ctx context.Context, sourceTag, targetTag string) (string, error)
	Push(ctx context.Context, imageTag string) (string, error)
}

// CmdRunner implements Runner by shelling out to the docker CLI.
type CmdRunner struct {
	runner CommandRunner
}

var _ Runner = &CmdRunner{}

// NewCmdRunner creates a Runner backed by the given CommandRunner.
func NewCmdRunner(runner CommandRunner) *CmdRunner {
	return &CmdRunner{runner: runner}
}

func (d *CmdRunner) Version(ctx context.Context) (string, error) {
	return d.runner.RunCommand(ctx, "docker", "version")
}

func (d *CmdRunner) Build(ctx context.Context, dockerfilePath, imageTag, contextPath string) (string, error) {
	return d.runner.RunCommand(ctx, "docker", "build", "-f", dockerfilePath, "-t", imageTag, contextPath)
}

func (d *CmdRunner) Tag(ctx context.Context, sourceTag, targetTag string) (string, error) {
	return d.runner.RunCommand(ctx, "docker", "tag", sourceTag, targetTag)
}

func (d *CmdRunner) Push(ctx context.Context, imageTag string) (string, error) {
	return d.runner.RunCommand(ctx, "docker", "push", imageTag)
}
