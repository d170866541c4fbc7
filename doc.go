// Package sealpost is the core library of a whistleblower submission
// platform: journalist authentication and irreversible source deletion.
//
// The packages under pkg/ are small and composable:
//
//   - hexsecret: hex encoding policy for operator-entered OTP secrets
//   - passhash: Argon2id passphrase digests behind a bounded worker pool
//   - otp: RFC 4226/6238 HOTP and TOTP primitives
//   - twofactor: second-factor enrollment, verification, QR provisioning
//   - throttle: per-account login throttling over a pluggable store
//   - session: opaque bearer-token sessions
//   - authn: the login and credential-lifecycle service tying the above
//     together with uniform failure reporting and timing equalization
//   - deletion: the detached pipeline that destroys a source's key,
//     files, and database records
//   - keyring, erase, source, account, designation: the collaborators
//     the deletion pipeline and authentication service run against
//
// Infrastructure packages (config, logger, pg, redis, qrcode) carry the
// ambient concerns and are shared by everything above.
//
// Typical wiring:
//
//	accounts := account.NewMemoryStore()
//	hasher := passhash.NewPool(passhash.New(), 4)
//	second, _ := twofactor.New(accounts, twofactor.Config{Issuer: "SealPost"})
//	thr, _ := throttle.New(throttle.NewMemoryStore(), throttle.Config{})
//	sessions, _ := session.NewManager(session.NewMemoryStore(), session.Config{})
//
//	svc, _ := authn.New(accounts, hasher, second, thr, sessions)
//	principal, err := svc.Login(ctx, username, passphrase, code)
package sealpost
