package zappyconn

import (
	"bufio"
	"fmt"
	"net"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lucas/zappy/internal/adminauth"
	"github.com/lucas/zappy/internal/zapperr"
)

// HandleAdmin implements the TLS admin task of spec.md §4.2.3: username
// and password prompts in that literal order, a credential check, then a
// tiny command loop whose only defined command is show_off.
//
// Grounded on original_source/server/src/routine/admin.rs's admin_routine.
func HandleAdmin(conn net.Conn, store *adminauth.Store, log *logrus.Logger) {
	defer conn.Close()
	entry := log.WithFields(logrus.Fields{"remote": conn.RemoteAddr().String(), "task": "admin"})

	reader := bufio.NewReader(conn)

	writeLine(conn, "Username:")
	username, err := readLine(reader, 0)
	if err != nil {
		entry.WithError(err).Debug("admin disconnected before username")
		return
	}
	writeLine(conn, "Password:")
	password, err := readLine(reader, 0)
	if err != nil {
		entry.WithError(err).Debug("admin disconnected before password")
		return
	}

	if !store.Verify(strings.TrimSpace(username), strings.TrimSpace(password)) {
		authErr := zapperr.WrongUsernameOrPassword()
		writeLine(conn, strings.TrimSuffix(authErr.ClientMessage(), "\n"))
		entry.WithError(authErr).Info("admin auth failed")
		return
	}

	writeLine(conn, "Hi admin!")
	entry.WithField("user", username).Info("admin authenticated")

	for {
		line, err := readLine(reader, 0)
		if err != nil {
			entry.WithError(err).Debug("admin session ended")
			return
		}
		switch strings.TrimSpace(strings.ToLower(line)) {
		case "show_off":
			entry.WithField("user", username).Info("admin ran show_off")
			writeLine(conn, "ok")
		default:
			writeLine(conn, fmt.Sprintf("Unknown command %q", line))
		}
	}
}
