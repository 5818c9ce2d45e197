package testsCommon

// PanelBlankerStub -
type PanelBlankerStub struct {
	BlankHandler func() error
}

// Blank -
func (stub *PanelBlankerStub) Blank() error {
	if stub.BlankHandler != nil {
		return stub.BlankHandler()
	}

	return nil
}

// IsInterfaceNil -
func (stub *PanelBlankerStub) IsInterfaceNil() bool {
	return stub == nil
}
