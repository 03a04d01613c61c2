// Package gitremote detects the GitLab project and current branch
// from the working directory's git repository.
package gitremote

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"strings"
	"time"
)

// Remote identifies a GitLab project parsed from an origin URL.
type Remote struct {
	Host      string
	Namespace string
	Name      string
}

// Path returns "namespace/project", the form the projects API accepts.
func (r Remote) Path() string {
	return r.Namespace + "/" + r.Name
}

// DetectRemote reads the origin remote URL and parses it.
func DetectRemote() (Remote, error) {
	out, err := git("remote", "get-url", "origin")
	if err != nil {
		return Remote{}, fmt.Errorf("no usable 'origin' remote: %w", err)
	}
	return ParseRemoteURL(out)
}

// CurrentBranch returns the checked-out branch name.
func CurrentBranch() (string, error) {
	out, err := git("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("detect current branch: %w", err)
	}
	if out == "" || out == "HEAD" {
		return "", fmt.Errorf("detached HEAD, no branch name")
	}
	return out, nil
}

func git(args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	out, err := exec.CommandContext(ctx, "git", args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ParseRemoteURL handles the two common remote forms:
//
//	git@gitlab.com:namespace/project.git
//	https://gitlab.com/namespace/project.git
func ParseRemoteURL(raw string) (Remote, error) {
	if strings.HasPrefix(raw, "git@") {
		return parseSSH(raw)
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return parseHTTP(raw)
	}
	return Remote{}, fmt.Errorf("unsupported git remote URL format: %s", raw)
}

func parseSSH(raw string) (Remote, error) {
	rest := strings.TrimPrefix(raw, "git@")
	host, path, ok := strings.Cut(rest, ":")
	if !ok || host == "" {
		return Remote{}, fmt.Errorf("invalid SSH remote URL: %s", raw)
	}
	return splitPath(host, path, raw)
}

func parseHTTP(raw string) (Remote, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Remote{}, fmt.Errorf("invalid remote URL %s: %w", raw, err)
	}
	if u.Host == "" {
		return Remote{}, fmt.Errorf("no host in remote URL: %s", raw)
	}
	return splitPath(u.Hostname(), strings.TrimPrefix(u.Path, "/"), raw)
}

func splitPath(host, path, raw string) (Remote, error) {
	path = strings.TrimSuffix(path, ".git")
	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Remote{}, fmt.Errorf("cannot parse namespace/project from remote URL: %s", raw)
	}
	// Subgroups: everything up to the last segment is the namespace.
	return Remote{
		Host:      host,
		Namespace: strings.Join(parts[:len(parts)-1], "/"),
		Name:      parts[len(parts)-1],
	}, nil
}
