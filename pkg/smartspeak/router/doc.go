// Package router provides the ambient navigation stack for SmartSpeak screens.
//
// A Router holds the current screen and the stack of screens that back
// navigation returns to. It is driven imperatively: PushForward opens a new
// screen, GoBack returns to the previous one (the hardware back button calls
// this too), and Reset starts over from a new root.
//
// # Basic Usage
//
//	r := router.New(constants.ScreenLogin)
//
//	r.Register(constants.ScreenCards, router.ScreenSpec{
//	    Roles: []constants.Role{constants.RoleTeacher, constants.RoleGuardian},
//	    Order: 10,
//	})
//
//	unsubscribe := r.OnChange(func(current string) {
//	    log.Println("now on", current)
//	})
//	defer unsubscribe()
//
//	r.Reset(constants.ScreenTeacherHome) // after login
//	r.PushForward(constants.ScreenCards)
//	r.GoBack()                           // back on teacher_home
//
// # Change Notifications
//
// Listeners are called synchronously, in subscription order, and only when
// the current screen value actually changes. Pushing the screen that is
// already current grows the stack but does not notify.
//
// # Screen Catalog
//
// Registration is optional for navigation. The catalog only feeds role-based
// menus: a ScreenSpec lists the roles that see the screen and its menu order.
package router
