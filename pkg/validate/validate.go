package validate

import "regexp"

var (
	emailRe = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	phoneRe = regexp.MustCompile(`^[\+]?[1-9][\d]{0,15}$`)
	urlRe   = regexp.MustCompile(`^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)
)

func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

func IsPhone(s string) bool {
	return phoneRe.MatchString(s)
}

func IsURL(s string) bool {
	return urlRe.MatchString(s)
}

func OneOf(s string, allowed ...string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
