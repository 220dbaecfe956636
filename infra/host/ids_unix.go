//go:build unix

package host

import (
	"os/user"
	"strconv"

	"golang.org/x/sys/unix"
)

// UIDGID returns user and group IDs used for the user inside the image.
// Missing values are taken from the current user, gid is the primary group of the resolved uid.
func UIDGID(uid, gid *int) (int, int) {
	resUID := unix.Getuid()
	if uid != nil {
		resUID = *uid
	}
	if gid != nil {
		return resUID, *gid
	}
	return resUID, primaryGID(resUID)
}

func primaryGID(uid int) int {
	u, err := user.LookupId(strconv.Itoa(uid))
	if err != nil {
		return unix.Getgid()
	}
	gid, err := strconv.Atoi(u.Gid)
	if err != nil {
		return unix.Getgid()
	}
	return gid
}
