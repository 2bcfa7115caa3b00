// Package docker wraps the docker CLI for building, tagging, and pushing
// images. The corpus of operations is deliberately small: the publish
// flow needs exactly build, tag, login, and push.
//
// Commands run through a CommandRunner interface so tests can substitute
// a fake without a docker daemon.
package docker
