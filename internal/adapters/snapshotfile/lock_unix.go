//go:build unix

package snapshotfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// lockFile takes an exclusive or shared advisory lock on the file
func lockFile(file *os.File, exclusive bool) error {
	how := unix.LOCK_SH
	if exclusive {
		how = unix.LOCK_EX
	}
	return unix.Flock(int(file.Fd()), how)
}

// unlockFile releases the lock on the file
func unlockFile(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_UN)
}
