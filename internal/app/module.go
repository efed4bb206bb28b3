package app

import (
	"github.com/shandysiswandi/venture/internal/blog"
	"github.com/shandysiswandi/venture/internal/identity"
	"github.com/shandysiswandi/venture/internal/notification"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.identity.enabled") {
		if err := identity.New(identity.Dependency{
			DBConn:      a.dbConn,
			Router:      a.router,
			CacheConn:   a.cacheConn,
			Mail:        a.mail,
			Config:      a.config,
			Idempotency: a.idemp,
			Messaging:   a.messaging,
			Instrument:  a.ins,
			UID:         a.uid,
			Bcrypt:      a.bcrypt,
			Clock:       a.clock,
			Validator:   a.validator,
			JWT:         a.jwt,
		}); err != nil {
			fatal("failed to init module", err, "module", "identity")
		}
	}

	if a.config.GetBool("modules.blog.enabled") {
		if err := blog.New(blog.Dependency{
			DBConn:      a.dbConn,
			Router:      a.router,
			Storage:     a.storage,
			Config:      a.config,
			Idempotency: a.idemp,
			Messaging:   a.messaging,
			Instrument:  a.ins,
			UID:         a.uid,
			UUID:        a.uuid,
			Validator:   a.validator,
		}); err != nil {
			fatal("failed to init module", err, "module", "blog")
		}
	}

	if a.config.GetBool("modules.notification.enabled") {
		if err := notification.New(notification.Dependency{
			Ctx:        a.ctx,
			Messaging:  a.messaging,
			Config:     a.config,
			Instrument: a.ins,
			UUID:       a.uuid,
			Clock:      a.clock,
			Goroutine:  a.goroutine,
			Validator:  a.validator,
			Mail:       a.mail,
		}); err != nil {
			fatal("failed to init module", err, "module", "notification")
		}
	}
}
