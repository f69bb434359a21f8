//go:build !unix && !windows

package snapshotfile

import "os"

func lockFile(file *os.File, exclusive bool) error { return nil }

func unlockFile(file *os.File) error { return nil }
