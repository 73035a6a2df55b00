// Package form holds the server-side state of the contact form: one Holder
// per visitor with the draft being edited and a flag for the submission in
// flight.
//
// A Holder validates before it dispatches, never runs two dispatches at once,
// and clears the draft only after the dispatcher accepts it. Outcomes are
// reported as Notice values; rendering them is left to the caller.
//
//	reg := form.NewRegistry(dispatcher, form.WithStore(store), form.WithLogger(log))
//	h, err := reg.Holder(ctx, visitorID)
//	if err != nil {
//	    return err
//	}
//	_ = h.Update(ctx, contact.FieldName, "Ana")
//	err = h.Submit(ctx, form.NotifierFunc(func(ctx context.Context, n form.Notice) {
//	    // render a toast for n.Kind
//	}))
//
// Drafts are written through to a Store on every change, so a reload or
// another replica sees the same draft. MemoryStore is the in-process
// default; RedisStore shares drafts between replicas.
//
// # Replicas
//
// Only the draft is shared. The in-flight flag lives in the Holder, which
// is local to one process, so the duplicate-submit guard holds per replica.
// Behind more than one replica the load balancer must pin a visitor to one
// instance (sticky sessions on the visitor cookie); otherwise two
// overlapping submits can land on different replicas and both dispatch.
package form
