package pqctls

// verify.go - peer chain verification without a hostname requirement

import (
	"crypto/x509"
	"fmt"
)

// verifyPeerChain returns an engine callback that verifies the peer's
// certificate chain against roots for the given usage, skipping the
// hostname check. A nil roots pool falls back to the system trust store.
func verifyPeerChain(roots *x509.CertPool, usage x509.ExtKeyUsage) func([][]byte, [][]*x509.Certificate) error {
	return func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
		if len(rawCerts) == 0 {
			return fmt.Errorf("%w: peer presented no certificate", ErrHandshakeFailed)
		}

		certs := make([]*x509.Certificate, 0, len(rawCerts))
		for _, raw := range rawCerts {
			cert, err := x509.ParseCertificate(raw)
			if err != nil {
				return fmt.Errorf("pqctls: parse peer certificate: %w", err)
			}
			certs = append(certs, cert)
		}

		opts := x509.VerifyOptions{
			Roots:         roots,
			Intermediates: x509.NewCertPool(),
			KeyUsages:     []x509.ExtKeyUsage{usage},
		}
		for _, cert := range certs[1:] {
			opts.Intermediates.AddCert(cert)
		}
		if _, err := certs[0].Verify(opts); err != nil {
			return fmt.Errorf("pqctls: verify peer certificate: %w", err)
		}
		return nil
	}
}
