// Package repository locates the git worktree pmd-po-helper runs in.
package repository

import (
	"fmt"
	"os"

	"github.com/jiangxin/goconfig"
	log "github.com/sirupsen/logrus"
)

// Repository holds repository and error.
type Repository struct {
	repository *goconfig.Repository
	error      error
}

var theRepository Repository

// Open will try to find repository in dir.
func (v *Repository) Open(dir string) error {
	v.repository, v.error = goconfig.FindRepository(dir)
	return v.error
}

// OpenRepository will try to find repository in dir. Translation projects
// are not always kept in git, so a failure only disables the repository
// config file.
func OpenRepository(dir string) {
	if err := theRepository.Open(dir); err != nil {
		log.Debugf("not in a git repository: %v", err)
	}
}

// Opened returns true if a repository was successfully opened.
func Opened() bool {
	return theRepository.error == nil && theRepository.repository != nil
}

// RequireOpened returns an error if the repository is not opened.
func RequireOpened() error {
	if !Opened() {
		if theRepository.error != nil {
			return theRepository.error
		}
		return fmt.Errorf("not in a git repository")
	}
	return nil
}

// WorkDir returns root dir of worktree.
func WorkDir() string {
	if err := RequireOpened(); err != nil {
		log.Fatal(err)
	}
	return theRepository.repository.WorkDir()
}

// WorkDirOrCwd returns WorkDir() when a repository is opened, otherwise the
// current working directory.
func WorkDirOrCwd() string {
	if Opened() {
		return theRepository.repository.WorkDir()
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
