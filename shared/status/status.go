// Package status holds the closed status vocabularies of reservations,
// payments and assignments, and the rules deciding which actor may move
// an entity from one status to another. Tokens are exact and case-sensitive.
package status

// Role is the role carried by an authenticated user
type Role string

const (
	RoleClient  Role = "client"
	RolePartner Role = "partner"
	RoleAdmin   Role = "admin"
)

// IsValid reports whether the role is known
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RolePartner, RoleAdmin:
		return true
	}
	return false
}

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationNew        ReservationStatus = "nouvelle"
	ReservationConfirmed  ReservationStatus = "confirmée"
	ReservationInProgress ReservationStatus = "en cours"
	ReservationCompleted  ReservationStatus = "terminée"
	ReservationCancelled  ReservationStatus = "annulée"
)

// ReservationStatuses lists every reservation token
var ReservationStatuses = []ReservationStatus{
	ReservationNew,
	ReservationConfirmed,
	ReservationInProgress,
	ReservationCompleted,
	ReservationCancelled,
}

// IsTerminal reports whether no partner can be assigned any more
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationCompleted || s == ReservationCancelled
}

func (s ReservationStatus) String() string {
	return string(s)
}

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "en attente"
	PaymentPaid     PaymentStatus = "payé"
	PaymentFailed   PaymentStatus = "échoué"
	PaymentRefunded PaymentStatus = "remboursé"
)

// PaymentStatuses lists every payment token
var PaymentStatuses = []PaymentStatus{
	PaymentPending,
	PaymentPaid,
	PaymentFailed,
	PaymentRefunded,
}

// IsTerminal reports whether the payment can no longer be confirmed
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentPaid || s == PaymentFailed || s == PaymentRefunded
}

func (s PaymentStatus) String() string {
	return string(s)
}

// AssignmentStatus represents the status of an assignment (partner request)
type AssignmentStatus string

const (
	AssignmentSent     AssignmentStatus = "envoyée"
	AssignmentAccepted AssignmentStatus = "acceptée"
	AssignmentRejected AssignmentStatus = "refusée"
)

// AssignmentStatuses lists every assignment token
var AssignmentStatuses = []AssignmentStatus{
	AssignmentSent,
	AssignmentAccepted,
	AssignmentRejected,
}

func (s AssignmentStatus) String() string {
	return string(s)
}

// AssignmentAction is a partner's answer to an assignment
type AssignmentAction string

const (
	ActionAccept AssignmentAction = "accept"
	ActionReject AssignmentAction = "reject"
)

// IsValid reports whether the action is accept or reject
func (a AssignmentAction) IsValid() bool {
	return a == ActionAccept || a == ActionReject
}

// Result returns the assignment status the action leads to
func (a AssignmentAction) Result() (AssignmentStatus, bool) {
	switch a {
	case ActionAccept:
		return AssignmentAccepted, true
	case ActionReject:
		return AssignmentRejected, true
	}
	return "", false
}

// IsValidReservationStatus tests membership in the reservation vocabulary
func IsValidReservationStatus(s string) bool {
	for _, status := range ReservationStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// IsValidPaymentStatus tests membership in the payment vocabulary
func IsValidPaymentStatus(s string) bool {
	for _, status := range PaymentStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// IsValidAssignmentStatus tests membership in the assignment vocabulary
func IsValidAssignmentStatus(s string) bool {
	for _, status := range AssignmentStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// CanTransitionReservation decides whether actor may set a reservation from
// one status to another. Only administrators mutate reservation status, and
// they may move between any two valid tokens; the marketplace remains the
// authority on everything else.
func CanTransitionReservation(from, to ReservationStatus, actor Role) bool {
	if actor != RoleAdmin {
		return false
	}
	return IsValidReservationStatus(string(from)) && IsValidReservationStatus(string(to))
}

// CanRespondToAssignment is true only while the assignment awaits the partner
func CanRespondToAssignment(current AssignmentStatus) bool {
	return current == AssignmentSent
}
