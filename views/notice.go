package views

import (
	"net/http"

	"github.com/rpupo63/portfolio-site/errs"
)

// Notice is the single feedback component shared by every page.
type Notice struct {
	Kind    errs.ErrorKind
	Message string
}

func (n Notice) IsError() bool {
	return n.Kind != errs.KindNone
}

func errorNotice(err error) *Notice {
	return &Notice{Kind: errs.Kind(err), Message: errs.Message(err)}
}

func successNotice(msg string) *Notice {
	return &Notice{Kind: errs.KindNone, Message: msg}
}

var noticeTitles = map[errs.ErrorKind]string{
	errs.KindNone:       "Done",
	errs.KindMissingID:  "Missing ID",
	errs.KindNotFound:   "Not found",
	errs.KindValidation: "Invalid input",
	errs.KindAuth:       "Not authorized",
	errs.KindBadRequest: "Bad request",
	errs.KindBackend:    "Something went wrong",
}

func noticeTitle(kind errs.ErrorKind) string {
	if t, ok := noticeTitles[kind]; ok {
		return t
	}
	return noticeTitles[errs.KindBackend]
}

// statusFor is the HTTP status a page renders with when it shows err.
func statusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return errs.StatusCode(err)
}
