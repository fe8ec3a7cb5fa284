package step

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kballard/go-shellquote"
)

// Artifact ...
type Artifact struct {
	Path string
	Name string
}

// Export copies the artifact into destination under its Name, overwriting any existing file.
// Permission bits and modification time are carried over.
func (artifact Artifact) Export(destination string) error {
	return copyFile(artifact.Path, filepath.Join(destination, artifact.Name))
}

// PrintableCopyCommand ...
func (artifact Artifact) PrintableCopyCommand(destination string) string {
	return shellquote.Join("cp", artifact.Path, filepath.Join(destination, artifact.Name))
}

func copyFile(src, dst string) (err error) {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("source is a directory: %s", src)
	}

	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return fmt.Errorf("%s and %s are the same file", src, dst)
	} else if err != nil && !os.IsNotExist(err) {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := in.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	// OpenFile only applies the mode when it creates the file.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
