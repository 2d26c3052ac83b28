package watchdog

// NewFakeWatchDog returns a watchdog that never fires, for loops without stall detection.
func NewFakeWatchDog() WatchDog {
	return &fakeWatchDogImpl{}
}

type fakeWatchDogImpl struct {
	started bool
}

func (impl *fakeWatchDogImpl) Touch() {

}

func (impl *fakeWatchDogImpl) Start() {
	impl.started = true
}

func (impl *fakeWatchDogImpl) Stop() {
	impl.started = false
}

func (impl *fakeWatchDogImpl) Started() bool {
	return impl.started
}

func (impl *fakeWatchDogImpl) Close() {

}
