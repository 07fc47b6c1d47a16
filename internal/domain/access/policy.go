// Package access holds the single authorization decision every handler
// consults before touching a domain service.
package access

import "github.com/dayflow-hris/workforce-backend-go/internal/domain/user"

type Resource string

const (
	ResourceDashboard         Resource = "dashboard"
	ResourceAttendance        Resource = "attendance"
	ResourceEmployeeDirectory Resource = "employee_directory"
	ResourceEmployeeProfile   Resource = "employee_profile"
	ResourceLeaveRequest      Resource = "leave_request"
	ResourcePayroll           Resource = "payroll"
	ResourceOnboarding        Resource = "onboarding"
)

type Action string

const (
	ActionList       Action = "list"
	ActionManage     Action = "manage"
	ActionView       Action = "view"
	ActionEdit       Action = "edit"
	ActionSubmit     Action = "submit"
	ActionDecide     Action = "decide"
	ActionViewOwn    Action = "view_own"
	ActionViewOthers Action = "view_others"
	ActionViewAll    Action = "view_all"
	ActionViewAdmin  Action = "view_admin"
	ActionEditSalary Action = "edit_salary"
	ActionRecord     Action = "record"
	ActionExport     Action = "export"
	ActionComplete   Action = "complete"
)

type Effect string

const (
	EffectAllow    Effect = "allow"
	EffectDeny     Effect = "deny"
	EffectRedirect Effect = "redirect"
)

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Subject is the caller as seen by the policy. The zero value is an
// unauthenticated caller.
type Subject struct {
	Authenticated   bool
	EmployeeID      string
	Role            user.Role
	NeedsOnboarding bool
}

// SubjectFrom builds a Subject from a trusted session identity.
func SubjectFrom(id user.Identity) Subject {
	return Subject{
		Authenticated:   true,
		EmployeeID:      id.EmployeeID,
		Role:            id.Role,
		NeedsOnboarding: id.NeedsOnboarding,
	}
}

func (s Subject) isAdmin() bool {
	return s.Authenticated && s.Role == user.RoleAdmin
}

type Decision struct {
	Effect     Effect
	RedirectTo string
	Reason     string
}

// Allowed reports whether the decision lets the request through.
func (d Decision) Allowed() bool {
	return d.Effect == EffectAllow
}

func allow() Decision {
	return Decision{Effect: EffectAllow}
}

func deny(reason string) Decision {
	return Decision{Effect: EffectDeny, RedirectTo: DashboardPath, Reason: reason}
}

type rule func(s Subject, isSelf bool) Decision

func anyone(Subject, bool) Decision { return allow() }

func adminOnly(s Subject, _ bool) Decision {
	if s.isAdmin() {
		return allow()
	}
	return deny("administrator role required")
}

func adminOrSelf(s Subject, isSelf bool) Decision {
	if s.isAdmin() || isSelf {
		return allow()
	}
	return deny("administrator role required for other employees")
}

func onboarding(s Subject, _ bool) Decision {
	if s.NeedsOnboarding {
		return allow()
	}
	return Decision{Effect: EffectRedirect, RedirectTo: DashboardPath, Reason: "onboarding already completed"}
}

var rules = map[Resource]map[Action]rule{
	ResourceDashboard: {
		ActionViewOwn:   anyone,
		ActionViewAdmin: adminOnly,
	},
	ResourceAttendance: {
		ActionRecord:     anyone,
		ActionViewOwn:    anyone,
		ActionViewOthers: adminOnly,
		ActionExport:     adminOnly,
	},
	ResourceEmployeeDirectory: {
		ActionList:   adminOnly,
		ActionManage: adminOnly,
	},
	ResourceEmployeeProfile: {
		ActionView: adminOrSelf,
		ActionEdit: adminOrSelf,
	},
	ResourceLeaveRequest: {
		ActionSubmit:  anyone,
		ActionViewOwn: anyone,
		ActionViewAll: adminOnly,
		ActionDecide:  adminOnly,
	},
	ResourcePayroll: {
		ActionViewOwn:    anyone,
		ActionViewOthers: adminOnly,
		ActionEditSalary: adminOnly,
	},
	ResourceOnboarding: {
		ActionComplete: onboarding,
	},
}

// Decide resolves whether subject may perform action on resource. isSelf
// tells the policy the target record belongs to the subject. Unknown
// resource/action pairs are denied.
func Decide(s Subject, resource Resource, action Action, isSelf bool) Decision {
	if !s.Authenticated {
		return Decision{Effect: EffectRedirect, RedirectTo: LoginPath, Reason: "authentication required"}
	}

	actions, ok := rules[resource]
	if !ok {
		return deny("unknown resource")
	}
	check, ok := actions[action]
	if !ok {
		return deny("unknown action")
	}
	return check(s, isSelf)
}

// Authorize is Decide folded into an error: nil when allowed, *DeniedError
// otherwise.
func Authorize(s Subject, resource Resource, action Action, isSelf bool) error {
	d := Decide(s, resource, action, isSelf)
	if d.Allowed() {
		return nil
	}
	return &DeniedError{Resource: resource, Action: action, Decision: d}
}
