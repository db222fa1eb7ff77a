package pkg

import (
	"net/http"
	"time"
)

// HTTPClient is shared by Bot API file downloads. The timeout covers the whole
// body, so it is sized for the 20 MB getFile limit on a slow link.
var HTTPClient = &http.Client{
	Timeout: time.Minute * 2,
	Transport: &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConnsPerHost: 8,
		IdleConnTimeout:     time.Second * 90,
	},
}
