package domainintel

import (
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
)

// DefaultWHOISHost answers referral queries for any TLD.
const DefaultWHOISHost = "whois.iana.org"

const whoisPort = "43"

// WHOIS implements Lookup over the plain-text whois protocol. It queries
// the configured host and follows a single registry referral.
type WHOIS struct {
	host    string
	timeout time.Duration
}

// NewWHOIS builds a whois-backed lookup. Empty host selects
// DefaultWHOISHost; a non-positive timeout defaults to 10s.
func NewWHOIS(host string, timeout time.Duration) *WHOIS {
	if host == "" {
		host = DefaultWHOISHost
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WHOIS{host: host, timeout: timeout}
}

func (w *WHOIS) Check(ctx context.Context, domain string) Report {
	domain = strings.TrimSpace(strings.ToLower(domain))
	if domain == "" {
		return Report{Status: StatusFailed, Detail: "empty domain"}
	}

	response, err := w.query(ctx, withPort(w.host), domain)
	if err != nil {
		return Report{Domain: domain, Status: StatusFailed, Detail: fmt.Sprintf("whois query failed: %v", err)}
	}

	// IANA and TLD servers answer with a referral to the registrar's
	// server, which holds the registration detail. Follow it once.
	if refer := fieldValue(response, "refer", "registrar whois server", "whois server"); refer != "" {
		if referred, err := w.query(ctx, withPort(refer), domain); err == nil {
			response = referred
		}
	}

	signals := map[string]string{}
	if v := fieldValue(response, "creation date", "created", "registered on"); v != "" {
		signals[SignalCreationDate] = v
	}
	if v := fieldValue(response, "registrar"); v != "" {
		signals[SignalRegistrar] = v
	}
	if v := fieldValue(response, "registrant country", "country"); v != "" {
		signals[SignalCountry] = v
	}

	if len(signals) == 0 {
		return Report{Domain: domain, Status: StatusFailed, Detail: "no registration signals in whois response"}
	}
	return Report{Domain: domain, Status: StatusOK, Signals: signals}
}

func (w *WHOIS) query(ctx context.Context, addr, domain string) (string, error) {
	dialer := net.Dialer{Timeout: w.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else {
		_ = conn.SetDeadline(time.Now().Add(w.timeout))
	}

	if _, err := fmt.Fprintf(conn, "%s\r\n", domain); err != nil {
		return "", err
	}

	raw, err := io.ReadAll(conn)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// withPort appends the well-known whois port unless the host already
// names one.
func withPort(host string) string {
	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}
	return net.JoinHostPort(host, whoisPort)
}

// fieldValue finds the first "Key: value" line whose key matches one of
// the given names, case-insensitively. Whois output has no fixed schema,
// so the keys vary per registry.
func fieldValue(response string, keys ...string) string {
	for _, line := range strings.Split(response, "\n") {
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		for _, key := range keys {
			if k == key {
				if v = strings.TrimSpace(v); v != "" {
					return v
				}
			}
		}
	}
	return ""
}
