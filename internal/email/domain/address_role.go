package domain

// AddressRole names the part an address plays in an email. It is used to label
// prompts and errors.
type AddressRole int

const (
	RoleRecipient AddressRole = iota
	RoleCc
	RoleBcc
	RoleSender
	RoleReplyTo
)

func (r AddressRole) String() string {
	switch r {
	case RoleRecipient:
		return "Recipient"
	case RoleCc:
		return "CC"
	case RoleBcc:
		return "BCC"
	case RoleSender:
		return "Sender"
	case RoleReplyTo:
		return "Reply-To"
	default:
		return "Unknown"
	}
}
