package header

const (
	// Accept is HTTP header for "Accept"
	Accept = "Accept"
	// ContentType is HTTP header for "Content-Type"
	ContentType = "Content-Type"

	// ApplicationJSON is HTTP header value for "application/json"
	ApplicationJSON = "application/json"

	// Host is HTTP header for "Host", the host requested by the client
	Host = "Host"
	// XForwardedHost is HTTP header for "X-Forwarded-Host", set by proxies
	// with the original Host value; comma-separated when the request passed
	// through a chain of proxies
	XForwardedHost = "X-Forwarded-Host"
	// XForwardedFor is HTTP header for "X-Forwarded-For", the client address
	// chain as seen by intermediate proxies
	XForwardedFor = "X-Forwarded-For"
	// ClientIP is HTTP header for "Client-Ip", set by some proxies and load
	// balancers with the originating client address
	ClientIP = "Client-Ip"
)

const (
	// ParamUTMSource is the query parameter carrying the traffic source
	ParamUTMSource = "utm_source"
	// ParamUTMMedium is the query parameter carrying the marketing medium
	ParamUTMMedium = "utm_medium"
	// ParamUTMCampaign is the query parameter carrying the campaign name
	ParamUTMCampaign = "utm_campaign"
	// ParamUTMContent is the query parameter differentiating ad content
	ParamUTMContent = "utm_content"
	// ParamUTMTerm is the query parameter carrying paid search keywords
	ParamUTMTerm = "utm_term"
	// ParamUTMReferrer is the query parameter carrying the referrer override
	ParamUTMReferrer = "utm_referrer"
)
