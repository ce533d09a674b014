package urlutil

import (
	"net/url"
	"strings"

	"github.com/go-shopfront/shopfront/xhttp/header"
)

// UTMLabels is the fixed set of campaign tracking labels. The key set is
// exhaustive; empty values mean the label is absent and are dropped when the
// set is rendered as a query string.
type UTMLabels struct {
	Source   string
	Medium   string
	Campaign string
	Content  string
	Term     string
	Referrer string
}

// NewUTMLabels builds the label set. No validation is applied; empty values
// are legal and kept in place until rendering.
func NewUTMLabels(source, medium, campaign, content, term, referrer string) UTMLabels {
	return UTMLabels{
		Source:   source,
		Medium:   medium,
		Campaign: campaign,
		Content:  content,
		Term:     term,
		Referrer: referrer,
	}
}

// UTMLabelsFromQuery picks the utm_* parameters out of a request query.
// Missing parameters yield absent labels; a nil query is legal.
func UTMLabelsFromQuery(q url.Values) UTMLabels {
	return UTMLabels{
		Source:   q.Get(header.ParamUTMSource),
		Medium:   q.Get(header.ParamUTMMedium),
		Campaign: q.Get(header.ParamUTMCampaign),
		Content:  q.Get(header.ParamUTMContent),
		Term:     q.Get(header.ParamUTMTerm),
		Referrer: q.Get(header.ParamUTMReferrer),
	}
}

// Query renders the labels as an application/x-www-form-urlencoded query
// string in the fixed order source, medium, campaign, content, term,
// referrer. Absent labels are dropped; keys are never sorted.
func (l UTMLabels) Query() string {
	var b strings.Builder
	for _, kv := range []struct {
		name  string
		value string
	}{
		{"source", l.Source},
		{"medium", l.Medium},
		{"campaign", l.Campaign},
		{"content", l.Content},
		{"term", l.Term},
		{"referrer", l.Referrer},
	} {
		if labelAbsent(kv.value) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(kv.name)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}

// labelAbsent reports whether a label value counts as absent. The literal
// "0" counts, keeping parity with loose-typed storefront clients that send
// falsy values interchangeably.
func labelAbsent(v string) bool {
	return v == "" || v == "0"
}
