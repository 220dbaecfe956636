//go:build !unix

package host

const (
	defaultUID = 999
	defaultGID = 0
)

// UIDGID returns user and group IDs used for the user inside the image.
// Hosts without posix accounts get fixed defaults.
func UIDGID(uid, gid *int) (int, int) {
	resUID, resGID := defaultUID, defaultGID
	if uid != nil {
		resUID = *uid
	}
	if gid != nil {
		resGID = *gid
	}
	return resUID, resGID
}
