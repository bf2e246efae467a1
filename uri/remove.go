package uri

import (
	"braces.dev/errtrace"
)

func (e *Editor) remove(s string, ids ...segmentID) (string, error) {
	s, err := e.checked(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	sg := split(s)
	edits := make([]edit, len(ids))
	for i, id := range ids {
		edits[i] = edit{id: id}
	}
	return errtrace.Wrap2(sg.with(edits...))
}

// RemoveProtocol removes the protocol of s together with the "://" separator.
func (e *Editor) RemoveProtocol(s string) (string, error) {
	return errtrace.Wrap2(e.remove(s, segProto))
}

// RemoveHost removes the whole authority of s: protocol, user info, host and port.
func (e *Editor) RemoveHost(s string) (string, error) {
	s, err := e.checked(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(removeAuthority(s))
}

func removeAuthority(s string) (string, error) {
	if !HasAuthority(s) {
		return s, nil
	}
	sg := split(s)
	return errtrace.Wrap2(sg.with(
		edit{id: segProto},
		edit{id: segUser},
		edit{id: segHost},
		edit{id: segPort},
	))
}

// RemovePort removes the port of s together with the ':' separator.
func (e *Editor) RemovePort(s string) (string, error) {
	return errtrace.Wrap2(e.remove(s, segPort))
}

// RemovePath removes the path of s. Query and fragment are kept.
func (e *Editor) RemovePath(s string) (string, error) {
	return errtrace.Wrap2(e.remove(s, segPath))
}

// RemoveQuery removes the query of s together with the '?'.
func (e *Editor) RemoveQuery(s string) (string, error) {
	return errtrace.Wrap2(e.remove(s, segQuery))
}

// RemoveFragment truncates s at the first '#'.
func (e *Editor) RemoveFragment(s string) (string, error) {
	return errtrace.Wrap2(e.remove(s, segFrag))
}
