package scaffold

import (
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"

	scerrors "scaffer/internal/errors"
	"scaffer/internal/output"
)

// InitRepository creates an empty git repository in dir of fs.
func InitRepository(fs billy.Filesystem, dir string) error {
	root := filepath.Join(fs.Root(), dir)

	worktree, err := fs.Chroot(dir)
	if err != nil {
		return scerrors.IOFailure("open project directory", root, err)
	}

	dotgit, err := worktree.Chroot(git.GitDirName)
	if err != nil {
		return scerrors.IOFailure("open git directory", filepath.Join(root, git.GitDirName), err)
	}

	storage := filesystem.NewStorage(dotgit, cache.NewObjectLRUDefault())
	if _, err := git.Init(storage, worktree); err != nil {
		return scerrors.IOFailure("initialize git repository", root, err)
	}

	output.Debug("initialized git repository", "path", root)
	return nil
}
