// Package contact holds the quote request form state machine.
//
// A Machine owns one visitor's form: its field values, the result of the last
// submission and the timers that move a result back to idle. Delivery of the
// message is delegated to a domain.ContactSubmitter so the machine does not
// know whether the visitor's mail client, a log line or a transactional
// e-mail service ends up carrying it. Sessions keeps one Machine per visitor.
package contact
