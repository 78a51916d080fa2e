package smartspeak

import (
	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/constants"
	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/router"
)

var (
	allRoles   = []constants.Role{constants.RoleGuardian, constants.RoleTeacher, constants.RoleLearner}
	adultRoles = []constants.Role{constants.RoleGuardian, constants.RoleTeacher}
)

// DefaultRouter returns a router at start with the SmartSpeak screen catalog
// registered. Login and signup are reachable but never listed in menus.
func DefaultRouter(start string, opts ...router.Option) *router.Router {
	return router.New(start, opts...).
		Register(constants.ScreenLogin, router.ScreenSpec{}).
		Register(constants.ScreenSignup, router.ScreenSpec{}).
		Register(constants.ScreenGuardianHome, router.ScreenSpec{
			Roles: []constants.Role{constants.RoleGuardian},
		}).
		Register(constants.ScreenTeacherHome, router.ScreenSpec{
			Roles: []constants.Role{constants.RoleTeacher},
		}).
		Register(constants.ScreenLearnerHome, router.ScreenSpec{
			Roles: []constants.Role{constants.RoleLearner},
		}).
		Register(constants.ScreenCards, router.ScreenSpec{Roles: allRoles, Order: 10}).
		Register(constants.ScreenCategories, router.ScreenSpec{Roles: adultRoles, Order: 20}).
		Register(constants.ScreenLearners, router.ScreenSpec{Roles: adultRoles, Order: 30}).
		Register(constants.ScreenMessages, router.ScreenSpec{Roles: adultRoles, Order: 40}).
		Register(constants.ScreenNotifications, router.ScreenSpec{Roles: allRoles, Order: 50}).
		Register(constants.ScreenProfile, router.ScreenSpec{Roles: allRoles, Order: 60}).
		Register(constants.ScreenSettings, router.ScreenSpec{Roles: adultRoles, Order: 70})
}
