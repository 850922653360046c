package command

import gocmd "github.com/goliatone/go-command"

var (
	_ gocmd.Commander[CreateContactMessage] = (*CreateContactCommand)(nil)
	_ gocmd.Commander[UpdateContactMessage] = (*UpdateContactCommand)(nil)
	_ gocmd.Commander[DeleteContactMessage] = (*DeleteContactCommand)(nil)
)
