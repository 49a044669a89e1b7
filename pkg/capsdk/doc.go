/*
Package capsdk provides a client SDK for the capability catalog service.

# Overview

The package is organized around two main types:

  - Client: unauthenticated operations (catalog, health) and login
  - Session: authenticated operations carrying a bearer token

Create a Client to talk to the service:

	client := capsdk.NewClient("https://capabilities.example.com")

	// Fetch the catalog (no authentication required)
	catalog, err := client.Capabilities(ctx)

	// Authenticate to create a session
	session, err := client.Login(ctx, "alice@example.com", password)

A stored token must never be trusted as-is. ResumeSession validates it with
the service and recovers the email and role it belongs to:

	session, err := client.ResumeSession(ctx, storedToken)
	if err != nil {
		// token expired or revoked; fall back to Login
	}

Use the Session for authenticated operations:

	info, err := session.Me(ctx)
	msg, err := session.Register(ctx, "Cloud Architecture", session.Email())
	msg, err := session.Unregister(ctx, "Cloud Architecture", email)

# Error Handling

Every non-2xx response is returned as a typed *APIError carrying the status
code and the service's detail string:

	_, err := session.Register(ctx, name, email)
	var apiErr *capsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
		// not allowed to register this email
	}
*/
package capsdk
