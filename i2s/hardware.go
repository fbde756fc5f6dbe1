// SPDX-License-Identifier: EPL-2.0

package i2s

// Hardware abstracts the platform's I2S transmitter and its DMA engine.
// Implementations translate these semantic operations into whatever
// register writes, pin muxing and interrupt wiring the target needs; the
// engine never touches registers itself.
type Hardware interface {
	// ConfigurePins routes the word-select, data and bit-clock pins to the
	// I2S block. ReleasePins hands them back to general I/O.
	ConfigurePins()
	ReleasePins()

	// EnableClock opens the peripheral clock gate for the I2S block.
	EnableClock()

	// Reset pulses the transmitter's reset line.
	Reset()

	// SetFrameFormat programs the sample width per channel and the channel
	// count of one frame. The engine always requests 16-bit dual channel.
	SetFrameFormat(bits, channels int)

	// ArmTransfer hands the head of the descriptor ring to the DMA engine
	// and arms the buffer-completion interrupt. onFrame is invoked exactly
	// once per completed buffer, from the platform's completion context,
	// with the descriptor the DMA engine just finished. The handler owns
	// its own locking; implementations must not call it re-entrantly.
	ArmTransfer(first *Descriptor, onFrame func(finished *Descriptor))

	// DisarmTransfer masks and clears the completion interrupt and detaches
	// the ring. After it returns no further onFrame calls may be delivered;
	// the engine relies on this before freeing the buffers.
	DisarmTransfer()

	// ProgramDividers writes the two clock dividers that derive the sample
	// clock from the base frequency. Both values are in [1, 63].
	ProgramDividers(div1, div2 uint8)

	// StartTransmission and StopTransmission gate the transmitter itself;
	// the DMA engine only moves data while transmission is running.
	StartTransmission()
	StopTransmission()
}
