// Package uploader moves host data into device-local buffers through
// staging copies on the graphics queue. It is owned by the context,
// initialized after the queues exist and torn down first.
package uploader

import (
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/renderware/vkcontext/driver"
)

// Uploader owns a command pool on the graphics queue family and
// performs one-time staging copies on it.
type Uploader struct {
	device driver.Device
	queue  driver.Queue
	pool   driver.CommandPool
	log    driver.Logger

	// Submissions on the shared queue are serialized; only host-side
	// staging writes run concurrently.
	mu sync.Mutex
}

// New creates the upload command pool on the given queue family.
func New(device driver.Device, queue driver.Queue, familyIndex int, log driver.Logger) (*Uploader, error) {
	pool, err := device.CreateCommandPool(familyIndex)
	if err != nil {
		return nil, errors.Wrapf(err, "creating upload command pool on family %d", familyIndex)
	}

	return &Uploader{
		device: device,
		queue:  queue,
		pool:   pool,
		log:    log,
	}, nil
}

// Upload copies data into a new device-local buffer with the given
// usage via a transient staging buffer, blocking until the copy
// completes.
func (u *Uploader) Upload(data []byte, usage driver.BufferUsageFlags) (driver.Buffer, error) {
	staging, err := u.stage(data)
	if err != nil {
		return nil, err
	}
	defer staging.Destroy()

	dst, err := u.device.CreateBuffer(len(data), driver.BufferTransferDst|usage, driver.MemoryDeviceLocal)
	if err != nil {
		return nil, errors.Wrap(err, "creating device-local buffer")
	}

	if err := u.copyBuffer(staging, dst, len(data)); err != nil {
		dst.Destroy()
		return nil, err
	}
	return dst, nil
}

// Payload is one batch upload entry.
type Payload struct {
	Data  []byte
	Usage driver.BufferUsageFlags
}

// UploadBatch uploads several payloads, overlapping the host-side
// staging writes. Either every returned buffer is valid or none is.
func (u *Uploader) UploadBatch(payloads []Payload) (_ []driver.Buffer, err error) {
	staging := make([]driver.Buffer, len(payloads))
	buffers := make([]driver.Buffer, len(payloads))

	defer func() {
		for _, s := range staging {
			if s != nil {
				s.Destroy()
			}
		}
		if err != nil {
			for _, b := range buffers {
				if b != nil {
					b.Destroy()
				}
			}
		}
	}()

	for i, p := range payloads {
		staging[i], err = u.device.CreateBuffer(len(p.Data), driver.BufferTransferSrc,
			driver.MemoryHostVisible|driver.MemoryHostCoherent)
		if err != nil {
			return nil, errors.Wrapf(err, "creating staging buffer %d", i)
		}
		buffers[i], err = u.device.CreateBuffer(len(p.Data), driver.BufferTransferDst|p.Usage,
			driver.MemoryDeviceLocal)
		if err != nil {
			return nil, errors.Wrapf(err, "creating device-local buffer %d", i)
		}
	}

	var group errgroup.Group
	for i, p := range payloads {
		i, p := i, p
		group.Go(func() error {
			return errors.Wrapf(staging[i].Write(0, p.Data), "writing staging buffer %d", i)
		})
	}
	if err = group.Wait(); err != nil {
		return nil, err
	}

	for i := range payloads {
		if err = u.copyBuffer(staging[i], buffers[i], len(payloads[i].Data)); err != nil {
			return nil, err
		}
	}

	u.log.Debugf("uploaded %d buffers", len(buffers))
	return buffers, nil
}

func (u *Uploader) stage(data []byte) (driver.Buffer, error) {
	staging, err := u.device.CreateBuffer(len(data), driver.BufferTransferSrc,
		driver.MemoryHostVisible|driver.MemoryHostCoherent)
	if err != nil {
		return nil, errors.Wrap(err, "creating staging buffer")
	}
	if err := staging.Write(0, data); err != nil {
		staging.Destroy()
		return nil, errors.Wrap(err, "writing staging buffer")
	}
	return staging, nil
}

// copyBuffer records and submits a one-time copy and waits for the
// queue to drain.
func (u *Uploader) copyBuffer(src, dst driver.Buffer, size int) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	cmd, err := u.pool.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning upload command buffer")
	}
	defer cmd.Free()

	if err := cmd.CopyBuffer(src, dst, size); err != nil {
		return errors.Wrap(err, "recording buffer copy")
	}
	if err := cmd.End(); err != nil {
		return errors.Wrap(err, "ending upload command buffer")
	}
	if err := u.queue.Submit(cmd); err != nil {
		return errors.Wrap(err, "submitting upload")
	}
	return errors.Wrap(u.queue.WaitIdle(), "waiting for upload queue")
}

// Destroy releases the command pool. Called by the owning context
// before the logical device is destroyed.
func (u *Uploader) Destroy() {
	u.pool.Destroy()
}
