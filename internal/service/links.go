package service

import "net/url"

// shareURL is the public locator of a result page.
func shareURL(baseURL, assessmentID string) string {
	return baseURL + "/result/" + url.PathEscape(assessmentID)
}
