package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// proxyHTML is the same-origin relay page the bookmarklet embeds in a hidden
// iframe. It forwards postMessage requests to the API and posts results back,
// sidestepping third-party CORS restrictions on the host page. Messages from
// foreign origins are dropped; requests carry {requestId, url, options} and
// replies carry {requestId, success, data|error}.
const proxyHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>MemeDB Proxy</title>
<style>body { margin: 0; padding: 0; width: 1px; height: 1px; overflow: hidden; }</style>
</head>
<body>
<script>
(function () {
  'use strict';

  window.addEventListener('message', function (event) {
    // Security: only accept messages from the same origin
    if (event.origin !== window.location.origin) {
      return;
    }

    var msg = event.data || {};
    var requestId = msg.requestId;
    var url = msg.url;
    var options = msg.options || {};
    if (!requestId || !url) {
      return;
    }

    fetch(url, Object.assign({}, options, {
      headers: Object.assign({ 'Content-Type': 'application/json' }, options.headers || {})
    })).then(function (response) {
      var contentType = response.headers.get('content-type');
      var body = contentType && contentType.indexOf('application/json') !== -1
        ? response.json()
        : response.text();
      return body.then(function (data) {
        event.source.postMessage({ requestId: requestId, success: true, data: data }, event.origin);
      });
    }).catch(function (error) {
      event.source.postMessage({
        requestId: requestId,
        success: false,
        error: (error && error.message) || 'Request failed'
      }, event.origin);
    });
  });

  // Signal that the proxy is ready
  if (window.parent !== window) {
    window.parent.postMessage({ type: 'memedb-proxy-ready' }, '*');
  }
})();
</script>
</body>
</html>`

func (s *Server) handleBookmarkletProxy(c echo.Context) error {
	c.Response().Header().Set("X-Frame-Options", "SAMEORIGIN")
	return c.HTML(http.StatusOK, proxyHTML)
}
